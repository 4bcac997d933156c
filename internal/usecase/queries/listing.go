package queries

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
	MaxLimit     = 100
	DefaultSort  = "-createdAt"

	// MaxOffset bounds (page-1)*limit so the offset never overflows.
	MaxOffset = math.MaxInt32
)

var (
	ErrInvalidFilterValue = errs.Validation("invalid filter value")
	ErrPageOutOfRange     = errs.Validation("page is out of range")
)

// reservedParams never become filters.
var reservedParams = map[string]bool{
	"page":            true,
	"limit":           true,
	"fields":          true,
	"sort":            true,
	"search":          true,
	"currency":        true,
	"includeInactive": true,
	"mode":            true,
}

var rangeKeyRegex = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)\[(gte|gt|lte|lt)\]$`)

type FieldKind int

const (
	KindString FieldKind = iota
	KindDecimal
	KindInt
	KindBool
	KindTime
	KindUUID
)

type Field struct {
	Column     string
	Kind       FieldKind
	Filterable bool
	Sortable   bool
}

// Resource whitelists the API field names a listing may project, sort and filter on.
type Resource struct {
	Name   string
	Fields map[string]Field
}

type Operator string

const (
	OpEq  Operator = "="
	OpGte Operator = ">="
	OpGt  Operator = ">"
	OpLte Operator = "<="
	OpLt  Operator = "<"
)

var rangeOps = map[string]Operator{
	"gte": OpGte,
	"gt":  OpGt,
	"lte": OpLte,
	"lt":  OpLt,
}

type Filter struct {
	Column string
	Op     Operator
	Value  any
}

type SortField struct {
	Column string
	Desc   bool
}

type ListParams struct {
	Page    int
	Limit   int
	Fields  []string
	Sort    []SortField
	Filters []Filter
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Items  []T
	Page   int
	Limit  int
	Total  int64
	Fields []string
}

func listPage[T any](p ListParams, fetch func() ([]T, int64, error)) (*Page[T], error) {
	items, total, err := fetch()
	if err != nil {
		return nil, err
	}
	return &Page[T]{Items: items, Page: p.Page, Limit: p.Limit, Total: total, Fields: p.Fields}, nil
}

// ParseListParams keeps only whitelisted fields; unknown fields and operators are dropped.
func ParseListParams(values url.Values, res Resource) (ListParams, error) {
	p := ListParams{
		Page:  positiveOr(values.Get("page"), DefaultPage),
		Limit: positiveOr(values.Get("limit"), DefaultLimit),
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Page-1 > MaxOffset/p.Limit {
		return ListParams{}, errs.Wrapf(ErrPageOutOfRange, "page %d", p.Page)
	}

	if raw := values.Get("fields"); raw != "" {
		p.Fields = parseFields(raw, res)
	}

	p.Sort = parseSort(values.Get("sort"), res)
	if len(p.Sort) == 0 {
		p.Sort = parseSort(DefaultSort, res)
	}

	filters, err := parseFilters(values, res)
	if err != nil {
		return ListParams{}, err
	}
	p.Filters = filters
	return p, nil
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseFields(raw string, res Resource) []string {
	seen := map[string]bool{"id": true}
	fields := []string{"id"}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if _, ok := res.Fields[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, name)
	}
	if len(fields) == 1 {
		return nil
	}
	return fields
}

func parseSort(raw string, res Resource) []SortField {
	var out []SortField
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		desc := strings.HasPrefix(key, "-")
		key = strings.TrimPrefix(key, "-")
		f, ok := res.Fields[key]
		if !ok || !f.Sortable {
			continue
		}
		out = append(out, SortField{Column: f.Column, Desc: desc})
	}
	return out
}

func parseFilters(values url.Values, res Resource) ([]Filter, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Filter
	for _, key := range keys {
		if reservedParams[key] {
			continue
		}
		name, op := key, OpEq
		if m := rangeKeyRegex.FindStringSubmatch(key); m != nil {
			name, op = m[1], rangeOps[m[2]]
		}
		f, ok := res.Fields[name]
		if !ok || !f.Filterable {
			continue
		}
		value, err := parseValue(values.Get(key), f.Kind)
		if err != nil {
			return nil, errs.Wrapf(ErrInvalidFilterValue, "%s", key)
		}
		out = append(out, Filter{Column: f.Column, Op: op, Value: value})
	}
	return out, nil
}

func parseValue(raw string, kind FieldKind) (any, error) {
	switch kind {
	case KindDecimal:
		return decimal.NewFromString(raw)
	case KindInt:
		return strconv.ParseInt(raw, 10, 64)
	case KindBool:
		return strconv.ParseBool(raw)
	case KindTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse(time.DateOnly, raw)
	case KindUUID:
		return uuid.Parse(raw)
	default:
		return raw, nil
	}
}

// Project trims each item down to the requested fields, keyed by JSON name.
// Items are returned unchanged when no projection was requested.
func Project[T any](items []T, fields []string) ([]any, error) {
	out := make([]any, 0, len(items))
	if len(fields) == 0 {
		for _, item := range items {
			out = append(out, item)
		}
		return out, nil
	}

	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, errs.Wrap(err, "project item")
		}
		var full map[string]any
		if err := json.Unmarshal(raw, &full); err != nil {
			return nil, errs.Wrap(err, "project item")
		}
		picked := make(map[string]any, len(fields))
		for _, f := range fields {
			if v, ok := full[f]; ok {
				picked[f] = v
			}
		}
		out = append(out, picked)
	}
	return out, nil
}
