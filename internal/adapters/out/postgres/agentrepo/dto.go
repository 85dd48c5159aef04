// Package agentrepo persists delivery agents in the delivery_agents table.
package agentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AgentDTO is the delivery_agents row. Version is the compare-and-set token
// checked by every update.
type AgentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"not null;uniqueIndex"`
	Name            string    `gorm:"not null"`
	Phone           string
	Email           string
	Status          string          `gorm:"type:varchar(16);not null;index"`
	TotalDeliveries int             `gorm:"not null;default:0"`
	TotalEarnings   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TodaysEarning   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Rating          float64         `gorm:"not null;default:0"`
	Version         int64           `gorm:"not null;default:0"`
	UpdatedAt       time.Time
}

func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:              a.ID().Bytes(),
		Code:            a.Code(),
		Name:            a.Name(),
		Phone:           a.Phone(),
		Email:           a.Email(),
		Status:          a.Status().String(),
		TotalDeliveries: a.TotalDeliveries(),
		TotalEarnings:   a.TotalEarnings().Decimal(),
		TodaysEarning:   a.TodaysEarning().Decimal(),
		Rating:          a.Rating(),
		Version:         a.Version(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := agent.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalEarnings)
	if err != nil {
		return nil, err
	}
	today, err := kernel.NewMoney(dto.TodaysEarning)
	if err != nil {
		return nil, err
	}
	if err = agent.ValidateRating(dto.Rating); err != nil {
		return nil, err
	}

	return agent.RestoreAgent(agent.Snapshot{
		ID:              id,
		Code:            dto.Code,
		Name:            dto.Name,
		Phone:           dto.Phone,
		Email:           dto.Email,
		Status:          status,
		TotalDeliveries: dto.TotalDeliveries,
		TotalEarnings:   total,
		TodaysEarning:   today,
		Rating:          dto.Rating,
		Version:         dto.Version,
	}), nil
}
