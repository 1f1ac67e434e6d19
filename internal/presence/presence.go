// Package presence tracks where volunteers currently are. Each volunteer is one Redis hash
// volunteer:<id> with is_active, latitude, longitude and last_update (unix seconds).
package presence

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
)

const keyPrefix = "volunteer:"

const (
	fieldActive     = "is_active"
	fieldLatitude   = "latitude"
	fieldLongitude  = "longitude"
	fieldLastUpdate = "last_update"
)

var timeNow = time.Now

type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewStore keeps a location usable for ttl after its last update.
func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(volunteerID string) string {
	return keyPrefix + volunteerID
}

// Touch marks the volunteer active, and records the point when one is given.
func (s *Store) Touch(ctx context.Context, volunteerID string, p *geo.Point) error {
	fields := map[string]interface{}{
		fieldActive:     "true",
		fieldLastUpdate: timeNow().Unix(),
	}
	if p != nil {
		fields[fieldLatitude] = strconv.FormatFloat(p.Latitude, 'f', -1, 64)
		fields[fieldLongitude] = strconv.FormatFloat(p.Longitude, 'f', -1, 64)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key(volunteerID), fields)
	if s.ttl > 0 {
		pipe.Expire(ctx, key(volunteerID), 2*s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update presence of %s: %w", volunteerID, err)
	}
	return nil
}

func (s *Store) SetInactive(ctx context.Context, volunteerID string) error {
	if err := s.rdb.HSet(ctx, key(volunteerID), fieldActive, "false").Err(); err != nil {
		return fmt.Errorf("failed to mark %s inactive: %w", volunteerID, err)
	}
	return nil
}

// Locations returns the fresh live point of every active volunteer among ids.
// Volunteers without a usable hash are simply absent from the map.
func (s *Store) Locations(ctx context.Context, ids []string) (map[string]geo.Point, error) {
	if len(ids) == 0 {
		return map[string]geo.Point{}, nil
	}

	cmds := make([]*redis.StringStringMapCmd, len(ids))
	_, err := s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, key(id))
		}
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read presence: %w", err)
	}

	now := timeNow()
	out := make(map[string]geo.Point, len(ids))
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil {
			continue
		}
		if p, ok := parse(fields, now, s.ttl); ok {
			out[ids[i]] = p
		}
	}
	return out, nil
}

// parse accepts an active, valid location updated within ttl. A zero ttl disables the
// freshness check.
func parse(fields map[string]string, now time.Time, ttl time.Duration) (geo.Point, bool) {
	if fields[fieldActive] != "true" {
		return geo.Point{}, false
	}
	if ttl > 0 {
		updated, err := strconv.ParseInt(fields[fieldLastUpdate], 10, 64)
		if err != nil || now.Sub(time.Unix(updated, 0)) > ttl {
			return geo.Point{}, false
		}
	}

	lat, err := strconv.ParseFloat(fields[fieldLatitude], 64)
	if err != nil {
		return geo.Point{}, false
	}
	lng, err := strconv.ParseFloat(fields[fieldLongitude], 64)
	if err != nil {
		return geo.Point{}, false
	}
	p, err := geo.NewPoint(lat, lng)
	if err != nil {
		return geo.Point{}, false
	}
	return p, true
}
