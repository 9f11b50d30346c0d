// Package middleware contains cross-cutting handlers for the update loop:
// message logging, panic recovery and per-chat serialization.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// LogMessage logs one inbound message: sender, chat and the first part of
// the text. Amounts routinely appear here, which the operator wants in
// the logs anyway.
func LogMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	text := message.Text
	if len(text) > 64 {
		text = text[:64] + "..."
	}

	log.WithFields(log.Fields{
		"user_id": message.From.ID,
		"chat_id": message.Chat.ID,
		"text":    text,
	}).Debug("inbound message")
}
