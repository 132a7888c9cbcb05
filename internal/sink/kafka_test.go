package sink_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"time"

	"threatwatch/internal/models"
	"threatwatch/internal/sink"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KafkaSink", func() {
	var (
		producer *mocks.SyncProducer
		kafka    *sink.KafkaSink
		alert    models.Alert
		outcome  models.Outcome
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		sink.TimeNow = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
		DeferCleanup(func() { sink.TimeNow = time.Now })

		producer = mocks.NewSyncProducer(GinkgoT(), nil)
		kafka = sink.NewKafkaSinkWithProducer(producer, "threat-alerts")
		DeferCleanup(kafka.Close)

		alert = models.Alert{
			ID:             "5b0c7a43-3c1e-4c4f-9d43-62b8c1c9a001",
			TxHash:         common.HexToHash("0xfeed"),
			Actor:          common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Severity:       models.SeverityCritical,
			Category:       models.CategoryMEVAbuse,
			Confidence:     90,
			CompositeScore: 95,
			EconomicImpact: big.NewInt(10_000_000_000_000_000),
			RelatedAlerts:  []common.Hash{common.HexToHash("0x01")},
			BlockNumber:    42,
		}
		outcome = models.Outcome{Status: models.OutcomeConfirmed, InclusionBlock: 55, BroadcastHash: common.HexToHash("0xb0b")}
	})

	It("publishes the outcome keyed by the transaction hash", func() {
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			defer GinkgoRecover()
			Expect(msg.Topic).To(Equal("threat-alerts"))

			key, err := msg.Key.Encode()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(key)).To(Equal(alert.TxHash.Hex()))

			value, err := msg.Value.Encode()
			Expect(err).NotTo(HaveOccurred())

			var env sink.Envelope
			Expect(json.Unmarshal(value, &env)).To(Succeed())
			Expect(env.Type).To(Equal(sink.EventAlertOutcome))
			Expect(env.ID).NotTo(BeEmpty())
			Expect(env.TS).To(Equal(int64(1_700_000_000_000)))

			var event sink.AlertEvent
			Expect(json.Unmarshal(env.Data, &event)).To(Succeed())
			Expect(event.Status).To(Equal("confirmed"))
			Expect(event.Severity).To(Equal("critical"))
			Expect(event.EconomicImpact).To(Equal("10000000000000000"))
			Expect(event.InclusionBlock).To(Equal(uint64(55)))
			Expect(event.RelatedAlerts).To(ConsistOf(common.HexToHash("0x01").Hex()))
			return nil
		})

		Expect(kafka.Publish(ctx, alert, outcome)).To(Succeed())
	})

	It("returns producer failures", func() {
		producer.ExpectSendMessageAndFail(errors.New("broker down"))
		err := kafka.Publish(ctx, alert, outcome)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("broker down"))
	})

	It("does not publish on a cancelled context", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		Expect(kafka.Publish(cctx, alert, outcome)).To(MatchError(context.Canceled))
	})
})
