// Package domain defines the poultry360 entity types exchanged with the
// remote API, plus the pure derivations (rates, ages, display formatting)
// computed client-side from fetched records.
package domain

// User is the authenticated identity record.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"` // admin, manager, worker
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// VerifyResponse is returned by the credential verification endpoint.
type VerifyResponse struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user,omitempty"`
}

// Farm is a single farm record. Stats fields are populated only by list
// endpoints that aggregate server-side.
type Farm struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	OwnerID      int    `json:"owner_id"`
	OwnerName    string `json:"owner_name,omitempty"`
	Capacity     int    `json:"capacity"`
	CurrentStock int    `json:"current_stock"`
	FarmType     string `json:"farm_type"` // broiler, layer, mixed
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`

	TotalBatches  int `json:"total_batches,omitempty"`
	TotalBirds    int `json:"total_birds,omitempty"`
	ActiveBirds   int `json:"active_birds,omitempty"`
	ActiveBatches int `json:"active_batches,omitempty"`
}

// FarmParams is the payload for farm create/update calls.
type FarmParams struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	OwnerID  int    `json:"owner_id,omitempty"`
	Capacity int    `json:"capacity"`
	FarmType string `json:"farm_type"`
}

/// Batch is a flock: a cohort of birds tracked as one unit. FarmID is a
// denormalized reference to the owning farm; it is not validated locally.
type Batch struct {
	ID           int    `json:"id"`
	BatchNumber  string `json:"batch_number"`
	FarmID       int    `json:"farm_id"`
	FarmName     string `json:"farm_name,omitempty"`
	PoultryType  string `json:"poultry_type"` // broiler, layer
	Breed        string `json:"breed"`
	InitialCount int    `json:"initial_count"`
	CurrentCount int    `json:"current_count"`
	ArrivalDate  string `json:"arrival_date"`
	AgeWeeks     int    `json:"age_weeks"`
	Status       string `json:"status"` // active, completed, transferred
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`

	TotalMortality int     `json:"total_mortality,omitempty"`
	MortalityPct   float64 `json:"mortality_rate,omitempty"`
	SurvivalPct    float64 `json:"survival_rate,omitempty"`
	TotalEggs      int     `json:"total_eggs,omitempty"`
	TotalFeedKg    float64 `json:"total_feed_kg,omitempty"`
	AvgDailyEggs   float64 `json:"avg_daily_eggs,omitempty"`
}

// BatchParams is the payload for flock create/update calls.
type BatchParams struct {
	BatchNumber  string `json:"batch_number"`
	FarmID       int    `json:"farm_id"`
	PoultryType  string `json:"poultry_type"`
	Breed        string `json:"breed"`
	InitialCount int    `json:"initial_count"`
	CurrentCount int    `json:"current_count"`
	ArrivalDate  string `json:"arrival_date"`
	AgeWeeks     int    `json:"age_weeks"`
	Status       string `json:"status,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ProductionRecord is a daily egg-collection entry for one batch.
type ProductionRecord struct {
	ID              int    `json:"id"`
	BatchID         int    `json:"batch_id"`
	BatchNumber     string `json:"batch_number,omitempty"`
	DateRecorded    string `json:"date_recorded"`
	EggsCollected   int    `json:"eggs_collected"`
	BrokenEggs      int    `json:"broken_eggs,omitempty"`
	AbnormalEggs    int    `json:"abnormal_eggs,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CollectedBy     int    `json:"collected_by"`
	CollectedByName string `json:"collected_by_name,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// ProductionParams is the payload for production record writes.
type ProductionParams struct {
	BatchID       int    `json:"batch_id"`
	DateRecorded  string `json:"date_recorded"`
	EggsCollected int    `json:"eggs_collected"`
	BrokenEggs    int    `json:"broken_eggs,omitempty"`
	AbnormalEggs  int    `json:"abnormal_eggs,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// FeedRecord is a feed-consumption entry for one batch.
type FeedRecord struct {
	ID          int     `json:"id"`
	BatchID     int     `json:"batch_id"`
	BatchNumber string  `json:"batch_number,omitempty"`
	FeedType    string  `json:"feed_type"`
	QuantityKg  float64 `json:"quantity_kg"`
	Cost        float64 `json:"cost,omitempty"`
	DateFed     string  `json:"date_fed"`
	Notes       string  `json:"notes,omitempty"`
	FedBy       int     `json:"fed_by"`
	FedByName   string  `json:"fed_by_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// FeedParams is the payload for feed record writes.
type FeedParams struct {
	BatchID    int     `json:"batch_id"`
	FeedType   string  `json:"feed_type"`
	QuantityKg float64 `json:"quantity_kg"`
	Cost       float64 `json:"cost,omitempty"`
	DateFed    string  `json:"date_fed"`
	Notes      string  `json:"notes,omitempty"`
}

// MortalityRecord is a death-count entry for one batch.
type MortalityRecord struct {
	ID             int    `json:"id"`
	BatchID        int    `json:"batch_id"`
	BatchNumber    string `json:"batch_number,omitempty"`
	DateRecorded   string `json:"date_recorded"`
	MortalityCount int    `json:"mortality_count"`
	Cause          string `json:"cause,omitempty"`
	Notes          string `json:"notes,omitempty"`
	RecordedBy     int    `json:"recorded_by"`
	RecordedByName string `json:"recorded_by_name,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// MortalityParams is the payload for mortality record writes.
type MortalityParams struct {
	BatchID        int    `json:"batch_id"`
	DateRecorded   string `json:"date_recorded"`
	MortalityCount int    `json:"mortality_count"`
	Cause          string `json:"cause,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// HealthRecord is a treatment/vaccination entry for one batch.
type HealthRecord struct {
	ID             int    `json:"id"`
	BatchID        int    `json:"batch_id"`
	BatchNumber    string `json:"batch_number,omitempty"`
	DateRecorded   string `json:"date_recorded"`
	HealthStatus   string `json:"health_status"`
	Treatment      string `json:"treatment,omitempty"`
	Notes          string `json:"notes,omitempty"`
	RecordedBy     int    `json:"recorded_by"`
	RecordedByName string `json:"recorded_by_name,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// HealthParams is the payload for health record writes.
type HealthParams struct {
	BatchID      int    `json:"batch_id"`
	DateRecorded string `json:"date_recorded"`
	HealthStatus string `json:"health_status"`
	Treatment    string `json:"treatment,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// RegisterParams is the payload for account registration. Registration and
/// login are decoupled: a new account must log in separately.
type RegisterParams struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// UserParams is the payload for user create/update calls (admin only).
type UserParams struct {
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
}

// DashboardOverview holds the aggregate counts shown on the dashboard.
type DashboardOverview struct {
	Farms          int `json:"farms"`
	Flocks         int `json:"flocks"`
	TotalBirds     int `json:"totalBirds"`
	TodayEggs      int `json:"todayEggs"`
	MortalityToday int `json:"mortalityToday"`
	TotalMortality int `json:"totalMortality"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type        string `json:"type"` // feed, production, health, mortality
	Date        string `json:"date"`
	Description string `json:"description"`
	PerformedBy string `json:"performed_by,omitempty"`
	FarmName    string `json:"farm_name,omitempty"`
}

// ProductionPerformance is one row of the ranked performance list.
type ProductionPerformance struct {
	FarmName        string  `json:"farm_name"`
	BatchNumber     string  `json:"batch_number"`
	CurrentCount    int     `json:"current_count"`
	AvgDailyEggs    float64 `json:"avg_daily_eggs"`
	LayingRatePct   float64 `json:"laying_rate_percent"`
	TotalEggs30Days int     `json:"total_eggs_30days"`
}

// Pagination describes the position of a list page.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Ack is the `{message}` acknowledgment returned by delete endpoints.
type Ack struct {
	Message string `json:"message"`
}
