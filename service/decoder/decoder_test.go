package decoder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
)

var _ = Describe("Decode", func() {
	DescribeTable("flower lines",
		func(line string, species inventory.Species, size inventory.Size) {
			record := Decode([]byte(line))
			Expect(record.Kind).To(Equal(KindFlower))
			Expect(record.Species).To(Equal(species))
			Expect(record.Size).To(Equal(size))
			Expect(record.Design).To(BeNil())
		},
		Entry("small", "aS", inventory.Species("a"), inventory.Size("S")),
		Entry("large", "zL", inventory.Species("z"), inventory.Size("L")),
	)

	DescribeTable("design lines",
		func(line string, expected *design.Design) {
			record := Decode([]byte(line))
			Expect(record.Kind).To(Equal(KindDesign))
			Expect(record.Size).To(Equal(expected.Size))
			Expect(record.Design).To(Equal(expected))
		},
		Entry("single species", "BL2a2", design.New("B", "L", 2, design.Requirement{Species: "a", Max: 2})),
		Entry("several species", "AS10a15b5c30",
			design.New("A", "S", 30, design.Requirement{Species: "a", Max: 10}, design.Requirement{Species: "b", Max: 15}, design.Requirement{Species: "c", Max: 5})),
		Entry("priority follows the line", "AL1c2b3a6",
			design.New("A", "L", 6, design.Requirement{Species: "c", Max: 1}, design.Requirement{Species: "b", Max: 2}, design.Requirement{Species: "a", Max: 3})),
		Entry("repeated species keeps first position", "AS2a3b5a4",
			design.New("A", "S", 4, design.Requirement{Species: "a", Max: 5}, design.Requirement{Species: "b", Max: 3})),
		Entry("zero total", "ZS1a0", design.New("Z", "S", 0, design.Requirement{Species: "a", Max: 1})),
	)

	DescribeTable("unknown lines",
		func(line string) {
			record := Decode([]byte(line))
			Expect(record.Kind).To(Equal(KindUnknown))
			Expect(record.Design).To(BeNil())
		},
		Entry("empty", ""),
		Entry("flower with trailing text", "aSx"),
		Entry("flower with trailing space", "aS "),
		Entry("swapped flower", "Sa"),
		Entry("lowercase only", "ab"),
		Entry("design without requirements", "AS3"),
		Entry("design without total", "AS2a"),
		Entry("design with lowercase size", "Aa2a2"),
		Entry("design with uppercase species", "AS2A2"),
		Entry("design with leading space", " AS2a2"),
		Entry("design with overflowing total", "AS2a99999999999999999999999"),
		Entry("design with overflowing cap", "AS99999999999999999999999a2"),
		Entry("design with non ASCII digit", "AS2a٣"),
	)
})

var _ = Describe("DecodeFlowers", func() {
	It("keeps first seen order", func() {
		flowers, ok := DecodeFlowers("10a15b5c")
		Expect(ok).To(BeTrue())
		Expect(flowers).To(Equal([]design.Requirement{{Species: "a", Max: 10}, {Species: "b", Max: 15}, {Species: "c", Max: 5}}))
	})

	It("rejects malformed runs", func() {
		for _, text := range []string{"", "10", "a10", "10a5", "10A"} {
			_, ok := DecodeFlowers(text)
			Expect(ok).To(BeFalse(), text)
		}
	})
})

var _ = Describe("Lines", func() {
	DescribeTable("splits documents",
		func(data string, expected []string) {
			Expect(Lines([]byte(data))).To(Equal(expected))
		},
		Entry("unix", "AS2a2\naS\n", []string{"AS2a2", "aS"}),
		Entry("windows", "AS2a2\r\naS\r\n", []string{"AS2a2", "aS"}),
		Entry("classic mac", "AS2a2\raS", []string{"AS2a2", "aS"}),
		Entry("blank separator", "AS2a2\n\naS", []string{"AS2a2", "", "aS"}),
		Entry("empty", "", []string(nil)),
	)

	It("renders kinds", func() {
		Expect(KindFlower.String()).To(Equal("flower"))
		Expect(KindDesign.String()).To(Equal("design"))
		Expect(KindUnknown.String()).To(Equal("unknown"))
	})
})
