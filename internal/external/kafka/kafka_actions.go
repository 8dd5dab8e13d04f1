package kafka

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

// Trusted internal producers (the rest of the backend) submit action
// payloads through kafka, bypassing bearer auth
type KafkaActions struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *KafkaActions, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_ACTIONS_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_ACTIONS_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_ACTIONS_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_ACTIONS_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "actions_rewards",
	}
	return &KafkaActions{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaActions) GetNewMessage(ctx context.Context) (actionJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaActions) CloseReader() {
	k.reader.Close()
}
