package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionValuesTable = "session_values"

// Keys of the persisted session values.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyClientID     = "client_id"
	keyClientSecret = "client_secret"
)

var sessionKeys = []string{keyAccessToken, keyRefreshToken, keyClientID, keyClientSecret}

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertValuesQuery inserts or replaces the given key/value pairs in
// one statement. Keys are written in the order of keys.
func buildUpsertValuesQuery(keys []string, values map[string]string) (string, []any, error) {
	insert := sqlite.Insert(sessionValuesTable).Columns("name", "value")
	for _, k := range keys {
		insert = insert.Values(k, values[k])
	}

	return insert.
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
}

// buildSelectValuesQuery selects the stored values of keys.
func buildSelectValuesQuery(keys []string) (string, []any, error) {
	return sqlite.
		Select("name", "value").
		From(sessionValuesTable).
		Where(sq.Eq{"name": keys}).
		ToSql()
}

// buildDeleteValuesQuery removes the stored values of keys.
func buildDeleteValuesQuery(keys []string) (string, []any, error) {
	return sqlite.
		Delete(sessionValuesTable).
		Where(sq.Eq{"name": keys}).
		ToSql()
}
