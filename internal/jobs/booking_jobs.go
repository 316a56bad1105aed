package jobs

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
)

// ExpireStalePendingBookings cancels bookings that are still PENDING after
// their check-in date has passed. A stay that was never confirmed cannot be
// honored, so the slot is released.
func (jr *JobRunner) ExpireStalePendingBookings() {
	jr.runWithRecovery("ExpireStalePendingBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'CANCELLED'
			WHERE status = 'PENDING'
			  AND check_in_date < $1
			RETURNING id, user_id, check_in_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().UTC().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to expire stale pending bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id      int32
				userID  int32
				checkIn time.Time
			)
			if err := rows.Scan(&id, &userID, &checkIn); err != nil {
				logger.Error("Failed to scan expired booking", "error", err)
				continue
			}
			count++
			logger.Debug("Cancelled stale pending booking",
				"booking_id", id,
				"user_id", userID,
				"check_in_date", checkIn.Format("2006-01-02"))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired bookings", "error", err)
			return
		}

		logger.Info("Expired stale pending bookings", "count", count)
	})
}

// SendCheckInReminders emails guests whose confirmed stay starts tomorrow
func (jr *JobRunner) SendCheckInReminders() {
	jr.runWithRecovery("SendCheckInReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		bookings, err := jr.store.BookingRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list bookings for reminders", "error", err)
			return
		}

		sent := 0
		for i := range bookings {
			b := &bookings[i]
			if b.Status != domain.BookingStatusConfirmed || b.CheckInDate != tomorrow {
				continue
			}
			if b.UserEmail == "" {
				logger.Warn("Booking has no guest email, skipping reminder", "booking_id", b.ID)
				continue
			}
			if err := jr.services.Email.SendCheckInReminder(ctx, b.UserEmail, b); err != nil {
				logger.Error("Failed to send check-in reminder",
					"booking_id", b.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent check-in reminders", "count", sent)
	})
}
