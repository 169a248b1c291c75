package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TokenizedName", func() {
	It("should parse name", func() {
		name := ParseName("QFT[0].Qubit[0]")
		Expect(name.Tokens[0].ElemName).To(Equal("QFT"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0}))
		Expect(name.Tokens[1].ElemName).To(Equal("Qubit"))
		Expect(name.Tokens[1].Index).To(Equal([]int{0}))
	})

	It("should parse multi-dimensional index", func() {
		name := ParseName("Lattice[0][1].Qubit[0][1]")
		Expect(name.Tokens[0].ElemName).To(Equal("Lattice"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0, 1}))
		Expect(name.Tokens[1].ElemName).To(Equal("Qubit"))
		Expect(name.Tokens[1].Index).To(Equal([]int{0, 1}))
	})

	It("should panic if the name is empty", func() {
		Expect(func() { NameMustBeValid("") }).To(Panic())
	})

	It("should panic if name include underscore", func() {
		Expect(func() { NameMustBeValid("Bell_0") }).To(Panic())
	})

	It("should panic if name include dash", func() {
		Expect(func() { NameMustBeValid("Bell-0") }).To(Panic())
	})

	It("should panic if name is not capitalized CamelCase", func() {
		Expect(func() { NameMustBeValid("bell0") }).To(Panic())
	})

	It("should have paired square brackets", func() {
		Expect(func() { NameMustBeValid("Bell[0") }).To(Panic())
	})

	It("should have paired square brackets", func() {
		Expect(func() { NameMustBeValid("Bell0]") }).To(Panic())
	})

	It("should be panic if element name is empty", func() {
		Expect(func() { NameMustBeValid("Bell..Measure") }).To(Panic())
	})

	It("should build name", func() {
		Expect(BuildName("", "Bell")).To(Equal("Bell"))
		Expect(BuildName("Bell", "Measure")).To(Equal("Bell.Measure"))
	})
})
