package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	ShopAPIURL           string
	ShopAPIUser          string
	ShopAPIPassword      string
	CourierAPIURL        string
	TrackingWorkers      string
	DashboardWindowHours string
	DashboardRefreshSpec string
}
