package cache

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewRelation,
	NewStatsStorage,
	NewOnlineStorage,
	NewSequence,
)
