// Package database manages the pgx connection pool for the offer warehouse.
package database
