// File: utils/constants.go
package utils

import "time"

// ClassListCachePrefix is the prefix used for Redis class-list cache keys.
const ClassListCachePrefix = "classes:"

// ScheduleSessionPrefix is the prefix used for pending schedule session keys.
const ScheduleSessionPrefix = "schedsess:"

// ScheduleSessionTTL is how long a pending schedule batch waits for user confirmation.
const ScheduleSessionTTL = 15 * time.Minute

// ClassListCacheTTL is the time-to-live for cached class lists.
const ClassListCacheTTL = 5 * time.Minute
