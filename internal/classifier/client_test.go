package classifier_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"time"

	"threatwatch/internal/classifier"
	"threatwatch/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.GWei))
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.Ether))
}

var _ = Describe("Client", func() {
	var (
		client    *classifier.Client
		server    *httptest.Server
		handler   http.HandlerFunc
		heuristic classifier.Heuristic
		cfg       classifier.Config
		tx        models.Transaction
		verdict   models.RiskVerdict
		received  map[string]any
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		received = nil
		heuristic = classifier.NewHeuristic(gwei(50), 2, ether(10))
		to := common.HexToAddress("0x00000000000000000000000000000000000000c3")
		tx = models.Transaction{
			Hash:        common.HexToHash("0xabc"),
			From:        common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			To:          &to,
			Value:       big.NewInt(1000),
			GasPrice:    gwei(20),
			GasLimit:    21000,
			Data:        []byte{0xde, 0xad},
			Nonce:       7,
			BlockNumber: 42,
		}
		handler = func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.URL.Path).To(Equal("/analyze"))
			Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"danger_score":80,"is_malicious":true,"threat_category":"MEV_ABUSE","threat_signature":"sandwich","confidence":91}`))
		}
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		DeferCleanup(server.Close)
		if cfg.URL == "" {
			cfg.URL = server.URL
		}
		client = classifier.NewClient(zap.NewNop().Sugar(), cfg, heuristic)
		verdict = client.Classify(ctx, tx)
	})

	AfterEach(func() {
		cfg = classifier.Config{}
	})

	When("the classifier answers", func() {
		BeforeEach(func() {
			cfg = classifier.Config{ModelVersion: "scorer-v3", Timeout: time.Second}
		})

		It("returns the classifier verdict", func() {
			Expect(verdict.Source).To(Equal(models.SourceClassifier))
			Expect(verdict.DangerScore).To(Equal(80.0))
			Expect(verdict.Malicious).To(BeTrue())
			Expect(verdict.Category).To(Equal(models.CategoryMEVAbuse))
			Expect(verdict.Confidence).To(Equal(91.0))
			Expect(verdict.Signature).To(Equal("sandwich"))
			Expect(verdict.ModelVersion).To(Equal("scorer-v3"))
		})

		It("sends the transaction fields", func() {
			Expect(received).To(HaveKeyWithValue("hash", tx.Hash.Hex()))
			Expect(received).To(HaveKeyWithValue("from", tx.From.Hex()))
			Expect(received).To(HaveKeyWithValue("to", tx.To.Hex()))
			Expect(received).To(HaveKeyWithValue("value", "1000"))
			Expect(received).To(HaveKeyWithValue("gasPrice", gwei(20).String()))
			Expect(received).To(HaveKeyWithValue("data", "0xdead"))
			Expect(received).To(HaveKeyWithValue("nonce", 7.0))
		})
	})

	When("the classifier returns a non 2xx status", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		})

		It("falls back to the heuristic", func() {
			Expect(verdict.Source).To(Equal(models.SourceHeuristic))
			Expect(verdict.Malicious).To(BeFalse())
		})
	})

	When("the classifier times out", func() {
		BeforeEach(func() {
			cfg = classifier.Config{Timeout: 50 * time.Millisecond}
			tx.GasPrice = gwei(150)
			handler = func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			}
		})

		It("uses the heuristic verdict", func() {
			Expect(verdict.Source).To(Equal(models.SourceHeuristic))
			Expect(verdict.Malicious).To(BeTrue())
			Expect(verdict.Category).To(Equal(models.CategoryFrontRunning))
		})
	})

	When("the classifier response is out of range", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"danger_score":180,"is_malicious":true}`))
			}
		})

		It("rejects it and falls back", func() {
			Expect(verdict.Source).To(Equal(models.SourceHeuristic))
		})
	})

	When("the classifier response misses the malicious flag", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"danger_score":20}`))
			}
		})

		It("falls back", func() {
			Expect(verdict.Source).To(Equal(models.SourceHeuristic))
		})
	})

	When("the classifier is unreachable", func() {
		BeforeEach(func() {
			cfg = classifier.Config{URL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}
			tx.GasPrice = gwei(150)
			tx.Value = ether(11)
		})

		It("flags gas and value outliers as critical", func() {
			Expect(verdict.Source).To(Equal(models.SourceHeuristic))
			Expect(verdict.Malicious).To(BeTrue())
			Expect(verdict.Severity()).To(Equal(models.SeverityCritical))
		})
	})

	Describe("Probe", func() {
		BeforeEach(func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/health" {
					w.WriteHeader(http.StatusOK)
					return
				}
				w.WriteHeader(http.StatusNotFound)
			}
		})

		It("succeeds against a healthy classifier", func() {
			Expect(client.Probe(ctx)).To(Succeed())
		})

		It("reports a missing url", func() {
			c := classifier.NewClient(zap.NewNop().Sugar(), classifier.Config{}, heuristic)
			Expect(c.Probe(ctx)).To(MatchError(classifier.ErrNotConfigured))
		})
	})
})

var _ = Describe("Heuristic", func() {
	var heuristic classifier.Heuristic

	BeforeEach(func() {
		heuristic = classifier.NewHeuristic(gwei(50), 2, ether(10))
	})

	It("derives the high gas limit from the baseline multiple", func() {
		Expect(heuristic.HighGasPrice).To(Equal(gwei(100)))
	})

	DescribeTable("verdicts",
		func(gasPrice, value *big.Int, malicious bool, severity models.Severity) {
			v := heuristic.Evaluate(models.Transaction{GasPrice: gasPrice, Value: value})
			Expect(v.Malicious).To(Equal(malicious))
			Expect(v.Severity()).To(Equal(severity))
			Expect(v.Source).To(Equal(models.SourceHeuristic))
		},
		Entry("nothing crossed", gwei(20), ether(1), false, models.SeverityInfo),
		Entry("gas only", gwei(150), ether(1), true, models.SeverityHigh),
		Entry("value only", gwei(20), ether(11), true, models.SeverityHigh),
		Entry("both crossed", gwei(150), ether(11), true, models.SeverityCritical),
		Entry("exactly at the limits", gwei(100), ether(10), false, models.SeverityInfo),
		Entry("missing amounts", nil, nil, false, models.SeverityInfo),
	)
})
