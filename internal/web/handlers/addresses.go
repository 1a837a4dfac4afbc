// Package handlers implements the JSON endpoints of the gazetteer API.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// AddressesHandler serves the address table endpoints.
type AddressesHandler struct {
	DB *sql.DB
}

// Address is one gazetteer row as served by the API. Zip is a pointer
// because backfill can leave a record without a postal code.
type Address struct {
	ID         int64   `json:"id"`
	PrefCode   string  `json:"pref_code"`
	Zip        *string `json:"zip"`
	PrefName   string  `json:"pref_name"`
	PrefKana   string  `json:"pref_kana"`
	PrefRomaji string  `json:"pref_romaji"`
	CityCode   string  `json:"city_code"`
	CityName   string  `json:"city_name"`
	CityKana   string  `json:"city_kana"`
	CityRomaji string  `json:"city_romaji"`
	TownName   string  `json:"town_name"`
	TownKana   string  `json:"town_kana"`
	TownRomaji string  `json:"town_romaji"`
	Koaza      string  `json:"koaza"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// AddressListResponse is a paginated slice of the address table.
type AddressListResponse struct {
	Addresses []Address `json:"addresses"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PerPage   int       `json:"per_page"`
}

// PrefectureStats summarizes one prefecture's share of the table.
type PrefectureStats struct {
	PrefCode string `json:"pref_code"`
	PrefName string `json:"pref_name"`
	Records  int    `json:"records"`
}

// PrefectureListResponse lists all loaded prefectures.
type PrefectureListResponse struct {
	Prefectures []PrefectureStats `json:"prefectures"`
}

const addressColumns = `
	id, pref_code, zip, pref_name, pref_kana, pref_romaji,
	city_code, city_name, city_kana, city_romaji,
	town_name, town_kana, town_romaji, koaza, lat, lon
`

// ListAddresses returns a filtered, paginated list of address records in
// build order.
func (h *AddressesHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := parseIntParam(query.Get("page"), 1)
	perPage := parseIntParam(query.Get("per_page"), 50)
	if perPage > 1000 {
		perPage = 1000
	}
	offset := (page - 1) * perPage

	baseQuery := "SELECT " + addressColumns + " FROM addresses WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM addresses WHERE 1=1"

	var conditions []string
	var args []interface{}
	argIndex := 1

	if prefCode := query.Get("pref_code"); prefCode != "" {
		conditions = append(conditions, " AND pref_code = $"+strconv.Itoa(argIndex))
		args = append(args, prefCode)
		argIndex++
	}
	if city := query.Get("city"); city != "" {
		conditions = append(conditions, " AND city_name = $"+strconv.Itoa(argIndex))
		args = append(args, city)
		argIndex++
	}
	if zip := query.Get("zip"); zip != "" {
		conditions = append(conditions, " AND zip = $"+strconv.Itoa(argIndex))
		args = append(args, zip)
		argIndex++
	}
	if search := query.Get("search"); search != "" {
		idx := strconv.Itoa(argIndex)
		conditions = append(conditions,
			" AND (town_name LIKE $"+idx+" OR koaza LIKE $"+idx+" OR town_romaji ILIKE $"+idx+")")
		args = append(args, "%"+search+"%")
		argIndex++
	}

	for _, condition := range conditions {
		baseQuery += condition
		countQuery += condition
	}

	var total int
	if err := h.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	baseQuery += " ORDER BY id LIMIT $" + strconv.Itoa(argIndex) + " OFFSET $" + strconv.Itoa(argIndex+1)
	args = append(args, perPage, offset)

	rows, err := h.DB.Query(baseQuery, args...)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	addresses := []Address{}
	for rows.Next() {
		var a Address
		if err := scanAddress(rows, &a); err != nil {
			continue
		}
		addresses = append(addresses, a)
	}

	writeJSON(w, AddressListResponse{
		Addresses: addresses,
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	})
}

// GetAddress returns a single record by id.
func (h *AddressesHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	row := h.DB.QueryRow("SELECT "+addressColumns+" FROM addresses WHERE id = $1", id)

	var a Address
	switch err := scanAddress(row, &a); err {
	case nil:
		writeJSON(w, a)
	case sql.ErrNoRows:
		http.Error(w, "Address not found", http.StatusNotFound)
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}

// ListPrefectures returns record counts per loaded prefecture.
func (h *AddressesHandler) ListPrefectures(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.Query(`
		SELECT pref_code, pref_name, COUNT(*)
		FROM addresses
		GROUP BY pref_code, pref_name
		ORDER BY pref_code
	`)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	prefectures := []PrefectureStats{}
	for rows.Next() {
		var p PrefectureStats
		if err := rows.Scan(&p.PrefCode, &p.PrefName, &p.Records); err != nil {
			continue
		}
		prefectures = append(prefectures, p)
	}

	writeJSON(w, PrefectureListResponse{Prefectures: prefectures})
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(s scanner, a *Address) error {
	return s.Scan(
		&a.ID, &a.PrefCode, &a.Zip, &a.PrefName, &a.PrefKana, &a.PrefRomaji,
		&a.CityCode, &a.CityName, &a.CityKana, &a.CityRomaji,
		&a.TownName, &a.TownKana, &a.TownRomaji, &a.Koaza, &a.Lat, &a.Lon,
	)
}

// parseIntParam parses a positive integer query parameter with a default.
func parseIntParam(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
