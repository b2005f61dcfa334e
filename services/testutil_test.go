package services

import (
	"testing"
	"time"

	"atithi-backend/config"
	"atithi-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type testStack struct {
	DB           *gorm.DB
	Activity     *ActivityService
	Rooms        *RoomService
	Guests       *GuestService
	Folio        *FolioService
	Reservations *ReservationService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	db := newTestDB(t)
	activity := NewActivityService(db)
	rooms := NewRoomService(db, activity)
	guests := NewGuestService(db)
	return &testStack{
		DB:           db,
		Activity:     activity,
		Rooms:        rooms,
		Guests:       guests,
		Folio:        NewFolioService(db, activity),
		Reservations: NewReservationService(db, rooms, guests, activity, LogNotifier{}),
	}
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func seedRoom(t *testing.T, st *testStack, ownerID uint, number string, priceCents int64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber: number,
		RoomType:   "STANDARD",
		PriceCents: priceCents,
	}
	require.NoError(t, st.Rooms.Create(ownerID, room))
	return room
}

func testGuest(name, phone string) GuestInfo {
	return GuestInfo{FullName: name, Phone: phone, Email: ""}
}
