package kafka

import (
	"strings"

	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter builds the shared producer used by the per-module event
// publishers. Topics are set per message, so one writer serves them all.
func NewWriter(brokers string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(strings.Split(brokers, ",")...),
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
	}
}
