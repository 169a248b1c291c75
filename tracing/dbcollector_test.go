package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/qdt/dtconv"
)

var _ = Describe("DBCollector", func() {
	var (
		ctrl      *gomock.Controller
		backend   *MockDataRecorder
		collector *DBCollector
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		backend = NewMockDataRecorder(ctrl)
		backend.EXPECT().CreateTable("conversions", gomock.Any())
		backend.EXPECT().CreateTable("rounding_warnings", gomock.Any())

		collector = NewDBCollector(backend)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should store conversion records", func() {
		var entry ConversionRecord
		backend.EXPECT().
			InsertData("conversions", gomock.Any()).
			Do(func(_ string, e any) {
				entry = e.(ConversionRecord)
			})

		collector.RecordConversion("CircuitConverter", dtconv.Conversion{
			CircuitID:          "12",
			CircuitName:        "Bell",
			FromDuration:       5,
			FromUnit:           "ms",
			DTInSec:            1e-6,
			ToDT:               5000,
			RoundingErrorInSec: 0,
		})

		Expect(entry.ID).NotTo(BeEmpty())
		Expect(entry.Converter).To(Equal("CircuitConverter"))
		Expect(entry.CircuitID).To(Equal("12"))
		Expect(entry.CircuitName).To(Equal("Bell"))
		Expect(entry.FromDuration).To(Equal(5.0))
		Expect(entry.FromUnit).To(Equal("ms"))
		Expect(entry.DTInSec).To(Equal(1e-6))
		Expect(entry.ToDT).To(Equal(int64(5000)))
		Expect(entry.Time).NotTo(BeEmpty())
	})

	It("should store warning records", func() {
		var entry WarningRecord
		backend.EXPECT().
			InsertData("rounding_warnings", gomock.Any()).
			Do(func(_ string, e any) {
				entry = e.(WarningRecord)
			})

		collector.RecordWarning("CircuitConverter", dtconv.RoundingWarning{
			DT:             2,
			ActualInSec:    2e-6,
			RequestedInSec: 1.5e-6,
			ErrorInSec:     5e-7,
		})

		Expect(entry.ID).NotTo(BeEmpty())
		Expect(entry.Converter).To(Equal("CircuitConverter"))
		Expect(entry.DT).To(Equal(int64(2)))
		Expect(entry.ActualInSec).To(Equal(2e-6))
		Expect(entry.RequestedInSec).To(Equal(1.5e-6))
		Expect(entry.ErrorInSec).To(Equal(5e-7))
		Expect(entry.Time).NotTo(BeEmpty())
	})

	It("should give each record a distinct ID", func() {
		ids := make(map[string]bool)
		backend.EXPECT().
			InsertData("conversions", gomock.Any()).
			Do(func(_ string, e any) {
				ids[e.(ConversionRecord).ID] = true
			}).
			Times(2)

		collector.RecordConversion("CircuitConverter", dtconv.Conversion{})
		collector.RecordConversion("CircuitConverter", dtconv.Conversion{})

		Expect(ids).To(HaveLen(2))
	})

	It("should flush the backend on terminate", func() {
		backend.EXPECT().Flush()

		collector.Terminate()
	})
})
