package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/anvaldez/p2p-data/internal/metrics"
	"github.com/anvaldez/p2p-data/internal/model"
)

// DB starts transactions. *pgxpool.Pool satisfies it.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Stats tracks loader activity across its lifetime.
type Stats struct {
	BatchesLoaded   int64
	BatchesFailed   int64
	OffersProcessed int64
}

// Loader transforms offers into warehouse rows. Dimension caches persist
// across batches, so one loader instance should serve the whole process.
// LoadBatch is not safe for concurrent calls; the job driver runs one
// batch at a time.
type Loader struct {
	db     DB
	logger *slog.Logger

	// Natural key -> surrogate id caches.
	cryptoCache  map[string]int32
	fiatCache    map[string]int32
	paymentCache map[string]int32
	advCache     map[string]int64

	statsMu sync.Mutex
	stats   Stats

	// Injected for tests.
	now func() time.Time
}

// New creates a new Loader on top of db.
func New(db DB, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		db:           db,
		logger:       logger,
		cryptoCache:  make(map[string]int32),
		fiatCache:    make(map[string]int32),
		paymentCache: make(map[string]int32),
		advCache:     make(map[string]int64),
		now:          time.Now,
	}
}

// Stats returns a snapshot of lifetime loader counters.
func (l *Loader) Stats() Stats {
	l.statsMu.Lock()
	defer l.statsMu.Unlock()
	return l.stats
}

// LoadBatch writes one extraction run into the warehouse under batchID.
// The whole batch commits or rolls back as a unit; the error (if any) is
// returned to the caller after rollback.
func (l *Loader) LoadBatch(ctx context.Context, offers []model.Offer, batchID uuid.UUID) error {
	if len(offers) == 0 {
		l.logger.Info("no offers to load", "batch_id", batchID)
		return nil
	}

	l.logger.Info("loading batch", "batch_id", batchID, "offers", len(offers))
	start := time.Now()

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch %s: %w", batchID, err)
	}
	// No-op once committed; guarantees release on every other exit path.
	defer tx.Rollback(ctx)

	if err := l.loadDimensions(ctx, tx, offers); err != nil {
		l.recordFailure()
		return fmt.Errorf("batch %s dimensions: %w", batchID, err)
	}

	extractedAt := l.now().UTC()
	if err := l.loadFacts(ctx, tx, offers, batchID, extractedAt); err != nil {
		l.recordFailure()
		return fmt.Errorf("batch %s facts: %w", batchID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		l.recordFailure()
		return fmt.Errorf("commit batch %s: %w", batchID, err)
	}

	l.statsMu.Lock()
	l.stats.BatchesLoaded++
	l.stats.OffersProcessed += int64(len(offers))
	l.statsMu.Unlock()

	metrics.BatchesLoaded.Inc()
	metrics.OffersLoaded.Add(float64(len(offers)))
	metrics.LoadDuration.Observe(time.Since(start).Seconds())

	l.logger.Info("batch loaded",
		"batch_id", batchID,
		"offers", len(offers),
		"duration", time.Since(start),
	)
	return nil
}

func (l *Loader) recordFailure() {
	l.statsMu.Lock()
	l.stats.BatchesFailed++
	l.statsMu.Unlock()
	metrics.BatchesFailed.Inc()
}

// loadDimensions pre-resolves every dimension referenced by the batch so
// fact insertion runs entirely off the caches.
func (l *Loader) loadDimensions(ctx context.Context, tx pgx.Tx, offers []model.Offer) error {
	for i := range offers {
		o := &offers[i]

		if _, err := l.cryptoID(ctx, tx, o.Asset); err != nil {
			return err
		}
		if _, err := l.fiatID(ctx, tx, o.Fiat); err != nil {
			return err
		}
		if _, err := l.advertiserSK(ctx, tx, o.AdvertiserID, o.AdvertiserNickname); err != nil {
			return err
		}
		for _, pm := range o.PaymentMethods {
			if _, err := l.paymentMethodID(ctx, tx, pm.Code, pm.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadFacts inserts one fact row per offer and one bridge row per payment
// method, all stamped with the batch's shared extraction timestamp.
func (l *Loader) loadFacts(ctx context.Context, tx pgx.Tx, offers []model.Offer, batchID uuid.UUID, extractedAt time.Time) error {
	for i := range offers {
		o := &offers[i]

		cryptoID, err := l.cryptoID(ctx, tx, o.Asset)
		if err != nil {
			return err
		}
		fiatID, err := l.fiatID(ctx, tx, o.Fiat)
		if err != nil {
			return err
		}
		advSK, err := l.advertiserSK(ctx, tx, o.AdvertiserID, o.AdvertiserNickname)
		if err != nil {
			return err
		}

		var offerID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO fact_offers (
				offer_external_id, batch_id, extraction_timestamp,
				crypto_id, fiat_id, advertiser_sk, trade_type,
				price, available_amount, min_limit, max_limit,
				completion_rate, total_orders_count, is_available
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, true)
			RETURNING offer_id
		`,
			o.ExternalID.String(), batchID, extractedAt,
			cryptoID, fiatID, advSK, string(o.TradeType),
			o.Price, o.AvailableAmount, o.MinLimit, o.MaxLimit,
			o.CompletionRate, o.TotalOrders,
		).Scan(&offerID)
		if err != nil {
			return fmt.Errorf("insert fact for offer %s: %w", o.ExternalID, err)
		}

		for _, pm := range o.PaymentMethods {
			pmID, err := l.paymentMethodID(ctx, tx, pm.Code, pm.Name)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO fact_offer_payment_methods (offer_id, extraction_timestamp, payment_method_id)
				VALUES ($1, $2, $3)
			`, offerID, extractedAt, pmID); err != nil {
				return fmt.Errorf("insert payment bridge for offer %s: %w", o.ExternalID, err)
			}
		}
	}
	return nil
}
