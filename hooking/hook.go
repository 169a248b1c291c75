// Package hooking provides a side channel that lets observers attach to an
// object and see what it does without changing its behavior.
package hooking

// A HookPos names a point in the control flow of a hookable object at which
// hooks fire.
type HookPos struct {
	Name string
}

// HookCtx carries what a hookable object was doing when a hook fired. The
// type of Item depends on the position.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
}

// A Hook is a piece of program that a hookable object invokes at hook
// positions.
type Hook interface {
	// Func is called every time the hook fires.
	Func(ctx HookCtx)
}

// A Hookable object lets hooks attach to it.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// Hooks returns the hooks registered, in registration order.
	Hooks() []Hook
}

// HookableBase implements Hookable for embedding in hookable types.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (b *HookableBase) AcceptHook(hook Hook) {
	for _, registered := range b.hooks {
		if registered == hook {
			panic("hook already registered")
		}
	}

	b.hooks = append(b.hooks, hook)
}

// NumHooks returns the number of hooks registered.
func (b *HookableBase) NumHooks() int {
	return len(b.hooks)
}

// Hooks returns the hooks registered, in registration order.
func (b *HookableBase) Hooks() []Hook {
	return b.hooks
}

// InvokeHook calls every registered hook with ctx.
func (b *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range b.hooks {
		hook.Func(ctx)
	}
}
