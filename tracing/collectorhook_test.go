package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/qdt/circuit"
	"github.com/sarchlab/qdt/dtconv"
)

var _ = Describe("CollectorHook", func() {
	var (
		ctrl      *gomock.Controller
		collector *MockCollector
		converter *dtconv.Converter
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		collector = NewMockCollector(ctrl)

		converter = dtconv.MakeBuilder().
			WithDTInSec(1e-6).
			Build("CircuitConverter")

		Collect(converter, collector)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should forward conversions to the collector", func() {
		qc := circuit.New("Bell", 2)
		qc.SetSchedule(5, "ms")

		collector.EXPECT().
			RecordConversion("CircuitConverter", gomock.Any()).
			Do(func(_ string, conversion dtconv.Conversion) {
				Expect(conversion.CircuitName).To(Equal("Bell"))
				Expect(conversion.ToDT).To(Equal(int64(5000)))
			})

		Expect(converter.ConvertInPlace(qc)).To(Succeed())
	})

	It("should forward rounding warnings to the collector", func() {
		qc := circuit.New("Bell", 2)
		qc.SetSchedule(1.5, "µs")

		gomock.InOrder(
			collector.EXPECT().
				RecordWarning("CircuitConverter", gomock.Any()).
				Do(func(_ string, warning dtconv.RoundingWarning) {
					Expect(warning.DT).To(Equal(int64(2)))
				}),
			collector.EXPECT().
				RecordConversion("CircuitConverter", gomock.Any()),
		)

		Expect(converter.ConvertInPlace(qc)).To(Succeed())
	})

	It("should refuse to attach the same collector twice", func() {
		Expect(func() {
			Collect(converter, collector)
		}).To(Panic())
	})
})
