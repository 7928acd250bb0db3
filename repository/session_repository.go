package repository

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serdvr66/orderQPro/entity"
)

var ErrNoSession = errors.New("no stored session")

// sessionRowID: a single well-known row; there is never more than one login
// on a device.
const sessionRowID = 1

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

func (r *SessionRepository) Save(user entity.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	row := entity.StoredSession{ID: sessionRowID, Token: token, UserJSON: raw}
	return r.DB.Save(&row).Error
}

func (r *SessionRepository) Load() (entity.User, string, error) {
	var row entity.StoredSession
	err := r.DB.First(&row, sessionRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.User{}, "", ErrNoSession
	}
	if err != nil {
		return entity.User{}, "", err
	}
	var user entity.User
	if len(row.UserJSON) > 0 {
		if err := json.Unmarshal(row.UserJSON, &user); err != nil {
			return entity.User{}, "", err
		}
	}
	return user, row.Token, nil
}

func (r *SessionRepository) Clear() error {
	return r.DB.Delete(&entity.StoredSession{}, sessionRowID).Error
}

const deviceRowID = 1

// DeviceID returns the persisted device identity, minting and storing one on
// first use. Logging out does not reset it.
func (r *SessionRepository) DeviceID() (string, error) {
	var row entity.Device
	err := r.DB.First(&row, deviceRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = entity.Device{ID: deviceRowID, UUID: uuid.NewString()}
		if err := r.DB.Create(&row).Error; err != nil {
			return "", err
		}
		return row.UUID, nil
	}
	if err != nil {
		return "", err
	}
	return row.UUID, nil
}
