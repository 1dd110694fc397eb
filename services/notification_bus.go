package services

import (
	"github.com/Gokulsuresh1918/winter-arc/models"

	"gorm.io/gorm"
)

type notificationDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _notify notificationDeps

func InitNotificationDeps(db *gorm.DB, rt *RealtimeHub) {
	_notify = notificationDeps{db: db, rt: rt}
}

// EmitNotification persists a user-facing event and pushes it to any open
// websocket connections. Safe to call before initialization (no-op).
func EmitNotification(userID uint, typ, message string) {
	if _notify.db == nil {
		return
	}
	n := &models.Notification{UserID: userID, Type: typ, Message: message}
	_ = _notify.db.Create(n).Error

	if _notify.rt != nil {
		_notify.rt.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
}
