package config

import "time"

const (
	envPrefix     = "HIGHLIGHTS_"
	envConfigFile = "HIGHLIGHTS_CONFIG"

	ProviderNBAStats = "nbastats"
	ProviderFixture  = "fixture"

	defaultPort      = "4000"
	defaultProvider  = ProviderNBAStats
	defaultLogLevel  = "info"
	defaultLogFormat = "json"

	// Shai Gilgeous-Alexander and the Oklahoma City Thunder.
	defaultTrackedPlayerID = 1628983
	defaultTrackedTeamID   = 1610612760

	defaultScheduleTimeout   = 15 * time.Second
	defaultPlayByPlayTimeout = 10 * time.Second
	defaultVideoTimeout      = 15 * time.Second
	defaultFullGameDelay     = 500 * time.Millisecond
	defaultClutchDelay       = 100 * time.Millisecond
	defaultParticipantCap    = 8
	defaultRetryAttempts     = 2
	defaultRetryBackoff      = 250 * time.Millisecond

	defaultMetricsEnabled = true
	defaultMetricsPort    = "9090"
	defaultServiceName    = "nba-highlights-service"
	defaultOtlpInsecure   = true
)
