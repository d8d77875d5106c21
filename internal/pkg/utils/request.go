package utils

import (
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

// BuildPaginationRequest reads page and page_size from the query string.
// defaultPageSize applies when page_size is missing or invalid.
func BuildPaginationRequest(r *http.Request, defaultPageSize int) *requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}
	if page > constvars.MaxPage {
		page = constvars.MaxPage
	}

	if defaultPageSize <= 0 {
		defaultPageSize = constvars.DefaultPageSize
	}
	pageSize, err := strconv.Atoi(query.Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildWithdrawRequestFilter(r *http.Request, defaultPageSize int) *requests.WithdrawRequestFilter {
	return &requests.WithdrawRequestFilter{
		Status:     strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamStatus))),
		Pagination: *BuildPaginationRequest(r, defaultPageSize),
	}
}
