package naming

import (
	"strconv"
	"strings"
)

// A Name is a hierarchical name: a series of tokens separated by dots. Names
// identify converters, circuits, and backends. A register of qubits can be
// named with square-bracket indices, as in "QFT.Qubit[3]".
type Name struct {
	Tokens []NameToken
}

// NameToken is one dot-separated element of a name, with its bracket indices
// if it has any.
type NameToken struct {
	ElemName string
	Index    []int
}

// ParseName splits a name string into its tokens. Mismatched brackets and
// non-integer indices panic.
func ParseName(name string) Name {
	elems := strings.Split(name, ".")
	parsed := Name{Tokens: make([]NameToken, len(elems))}

	for i, elem := range elems {
		parsed.Tokens[i] = parseToken(elem)
	}

	return parsed
}

func parseToken(token string) NameToken {
	bracketsMustPair(token)

	elem, rest, _ := strings.Cut(token, "[")
	parsed := NameToken{ElemName: elem}

	for rest != "" {
		digits, tail, _ := strings.Cut(rest, "]")

		index, err := strconv.Atoi(digits)
		if err != nil {
			panic("Name index must be integer")
		}

		parsed.Index = append(parsed.Index, index)
		rest = strings.TrimPrefix(tail, "[")
	}

	return parsed
}

func bracketsMustPair(token string) {
	depth := 0
	for _, c := range token {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}

		if depth < 0 {
			panic("Name bracket must match")
		}
	}

	if depth != 0 {
		panic("Name bracket must match")
	}
}

// NameMustBeValid panics if the name does not follow the naming convention.
// There are several rules that a name must follow.
//  1. It must be organized in a hierarchical structure. For example, a name
//     "Bell.Measure" is valid, but "Bell.Measure." is not.
//  2. Individual names must not be empty. For example, "Bell..Measure" is not
//     valid.
//  3. Individual names must be named as capitalized CamelCase style.
//     For example, "Bell.m" is not valid.
//  4. Elements in a series must be named using square-bracket notation, as in
//     "Qubit[2]".
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("Name " + name + " is not valid: " + r.(string))
		}
	}()

	for _, token := range ParseName(name).Tokens {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token NameToken) {
	if token.ElemName == "" {
		panic("Name element must not be empty")
	}

	if i := strings.IndexAny(token.ElemName, `_"'-`); i >= 0 {
		panic("Name element must not contain " + string(token.ElemName[i]))
	}

	if token.ElemName[0] < 'A' || token.ElemName[0] > 'Z' {
		panic("Name element must start with a capital letter")
	}
}

// BuildName joins a parent name and an element name with a dot. An empty
// parent yields the element name alone.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}
