package model

import (
	"time"

	"wayfare/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteModel is the GORM-specific struct for the 'favorites' table.
// The composite unique index on (user_id, poi_id) is the authoritative
// dedup guard for concurrent inserts.
type FavoriteModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_user_poi;index"`
	PoiID       int32     `gorm:"not null;uniqueIndex:uniq_user_poi"`
	Name        string    `gorm:"type:varchar(255);not null"`
	District    string    `gorm:"type:varchar(255)"`
	Address     string    `gorm:"type:varchar(512)"`
	Latitude    float64   `gorm:"type:decimal(10,6);not null"`
	Longitude   float64   `gorm:"type:decimal(10,6);not null"`
	Rating      string    `gorm:"type:varchar(32)"`
	OpenHours   string    `gorm:"type:varchar(255)"`
	PhotoRef    string    `gorm:"type:varchar(1024)"`
	Notes       string    `gorm:"type:text"`
	FavoritedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// FromFavoriteDomain converts a domain favorite into its storage model.
func FromFavoriteDomain(favorite *entity.FavoriteEntry) *FavoriteModel {
	return &FavoriteModel{
		ID:          favorite.ID,
		UserID:      favorite.UserID,
		PoiID:       favorite.PoiID,
		Name:        favorite.Name,
		District:    favorite.District,
		Address:     favorite.Address,
		Latitude:    favorite.Latitude,
		Longitude:   favorite.Longitude,
		Rating:      favorite.Rating,
		OpenHours:   favorite.OpenHours,
		PhotoRef:    favorite.PhotoRef,
		Notes:       favorite.Notes,
		FavoritedAt: favorite.FavoritedAt,
	}
}

// ToFavoriteDomain converts a storage model back into the domain entity.
func ToFavoriteDomain(favoriteM *FavoriteModel) *entity.FavoriteEntry {
	return &entity.FavoriteEntry{
		ID:          favoriteM.ID,
		UserID:      favoriteM.UserID,
		PoiID:       favoriteM.PoiID,
		Name:        favoriteM.Name,
		District:    favoriteM.District,
		Address:     favoriteM.Address,
		Latitude:    favoriteM.Latitude,
		Longitude:   favoriteM.Longitude,
		Rating:      favoriteM.Rating,
		OpenHours:   favoriteM.OpenHours,
		PhotoRef:    favoriteM.PhotoRef,
		Notes:       favoriteM.Notes,
		FavoritedAt: favoriteM.FavoritedAt,
	}
}
