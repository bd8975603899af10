package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/abandonment-garden/internal/models"
)

// AchievementNotifier публикует события о полученных достижениях
// в обменник achievements.
type AchievementNotifier struct {
	ch *amqp.Channel
}

// NewAchievementNotifier создает новый AchievementNotifier поверх открытого канала.
func NewAchievementNotifier(ch *amqp.Channel) *AchievementNotifier {
	return &AchievementNotifier{ch: ch}
}

// PublishAchievement отправляет событие о достижении в очередь уведомлений.
func (n *AchievementNotifier) PublishAchievement(event models.AchievementEvent) error {
	return PublishMessage(n.ch, AchievementsExchange, UnlockedRoutingKey, event)
}
