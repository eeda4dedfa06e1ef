package repoargs

type RepositoryName string

const (
	StaffRepoName       RepositoryName = "staff"
	OrderRepoName       RepositoryName = "order"
	ReservationRepoName RepositoryName = "reservation"
	TableRepoName       RepositoryName = "dining_table"
	LoyaltyRepoName     RepositoryName = "loyalty"
)
