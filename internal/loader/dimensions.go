package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Dimension resolution is get-or-create: look up by natural key, insert a
// new row when absent. RETURNING makes the generated surrogate id visible
// inside the open transaction before commit. Results are cached on the
// loader for the lifetime of the process.

func (l *Loader) cryptoID(ctx context.Context, tx pgx.Tx, symbol string) (int32, error) {
	if id, ok := l.cryptoCache[symbol]; ok {
		return id, nil
	}

	var id int32
	err := tx.QueryRow(ctx,
		`SELECT crypto_id FROM dim_cryptocurrencies WHERE symbol = $1`,
		symbol,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Name defaults to the symbol until enriched out of band.
		err = tx.QueryRow(ctx, `
			INSERT INTO dim_cryptocurrencies (symbol, name, binance_asset_code)
			VALUES ($1, $1, $1)
			RETURNING crypto_id
		`, symbol).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve crypto %q: %w", symbol, err)
	}

	l.cryptoCache[symbol] = id
	return id, nil
}

func (l *Loader) fiatID(ctx context.Context, tx pgx.Tx, code string) (int32, error) {
	if id, ok := l.fiatCache[code]; ok {
		return id, nil
	}

	var id int32
	err := tx.QueryRow(ctx,
		`SELECT fiat_id FROM dim_fiat_currencies WHERE currency_code = $1`,
		code,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `
			INSERT INTO dim_fiat_currencies (currency_code, currency_name)
			VALUES ($1, $1)
			RETURNING fiat_id
		`, code).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve fiat %q: %w", code, err)
	}

	l.fiatCache[code] = id
	return id, nil
}

func (l *Loader) paymentMethodID(ctx context.Context, tx pgx.Tx, code, name string) (int32, error) {
	if id, ok := l.paymentCache[code]; ok {
		return id, nil
	}

	var id int32
	err := tx.QueryRow(ctx,
		`SELECT payment_method_id FROM dim_payment_methods WHERE method_code = $1`,
		code,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		if name == "" {
			name = code
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO dim_payment_methods (method_code, method_name)
			VALUES ($1, $2)
			RETURNING payment_method_id
		`, code, name).Scan(&id)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve payment method %q: %w", code, err)
	}

	l.paymentCache[code] = id
	return id, nil
}

// advertiserSK resolves the current row for a natural advertiser id,
// creating a new current row effective today when none exists. Rows are
// never expired here; history handling lives downstream.
func (l *Loader) advertiserSK(ctx context.Context, tx pgx.Tx, advertiserID, nickname string) (int64, error) {
	if sk, ok := l.advCache[advertiserID]; ok {
		return sk, nil
	}

	var sk int64
	err := tx.QueryRow(ctx,
		`SELECT advertiser_sk FROM dim_advertisers WHERE advertiser_id = $1 AND is_current`,
		advertiserID,
	).Scan(&sk)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `
			INSERT INTO dim_advertisers (advertiser_id, nickname, is_merchant, registration_days, effective_date, is_current)
			VALUES ($1, $2, false, 0, $3, true)
			RETURNING advertiser_sk
		`, advertiserID, nickname, l.now().UTC()).Scan(&sk)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve advertiser %q: %w", advertiserID, err)
	}

	l.advCache[advertiserID] = sk
	return sk, nil
}
