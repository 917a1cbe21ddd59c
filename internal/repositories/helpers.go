package repositories

// NullIfEmpty helps store optional strings without writing empty text.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero stores optional numeric references as NULL instead of 0.
func NullIfZero(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

// limitClause builds the optional LIMIT/OFFSET tail for paginated lists.
// page/limit <= 0 means "no pagination", which keeps the legacy full-table
// contract for callers that send no query params.
func limitClause(page, limit int) (string, []any) {
	if page <= 0 || limit <= 0 {
		return "", nil
	}
	if limit > 200 {
		limit = 200
	}
	offset := (page - 1) * limit
	return " LIMIT ? OFFSET ?", []any{limit, offset}
}
