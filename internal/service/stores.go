package service

import (
	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Stores bundles the structures one logical operation fans out to.
type Stores struct {
	Keys      keys.Namespace
	Entities  EntityStore
	Sets      MembershipIndex
	Rank      RatingIndex
	Reviews   ReviewIDList
	Documents DocumentStore
	Search    Searcher
	Dedup     storage.DedupFilter
}

// NewRedisStores wires every structure to one shared client.
func NewRedisStores(client redis.Cmdable, ns keys.Namespace, dedup storage.DedupFilter, logger logrus.FieldLogger) Stores {
	return Stores{
		Keys:      ns,
		Entities:  storage.NewEntityStore(client, ns),
		Sets:      storage.NewSetIndex(client, ns),
		Rank:      storage.NewRankIndex(client, ns),
		Reviews:   storage.NewReviewList(client, ns),
		Documents: storage.NewDocumentStore(client),
		Search:    storage.NewSearchIndex(client, ns, logger),
		Dedup:     dedup,
	}
}

// Options carries the ambient collaborators shared by every service.
type Options struct {
	Logger  logrus.FieldLogger
	Metrics *metrics.Metrics
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	return o.Logger
}

func (o Options) batch() *storage.Batch {
	return storage.NewBatch(o.logger(), o.Metrics)
}
