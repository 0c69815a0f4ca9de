package cmd

import "time"

// Config carries everything the application reads from its environment:
// HTTP binding, database and cache connections, media storage, billing
// parameters, and the background job schedules.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL         string
	TrackingCacheTTL time.Duration

	MediaDir       string
	MediaURLPrefix string

	PlatformFeeRate float64
	TaxRate         float64
	PaymentTerm     time.Duration

	OrphanRetention        time.Duration
	OrphanCleanupSchedule  string
	InvoiceOverdueSchedule string
}
