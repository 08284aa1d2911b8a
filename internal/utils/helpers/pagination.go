package helpers

import (
	"net/http"
	"net/url"
	"strconv"
)

// Page — страничный конверт списков: count/next/previous/results.
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// ParsePage читает ?page=N из запроса. Нечисловое значение
// или значение меньше 1 трактуется как первая страница.
func ParsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// NewPage собирает конверт списка с абсолютными ссылками на соседние
// страницы. Страница за пределами данных отдаётся с пустым results,
// ссылки указывают только на реально существующие страницы.
func NewPage(r *http.Request, count, page, pageSize int, results interface{}) Page {
	p := Page{Count: count, Results: results}

	if page*pageSize < count {
		p.Next = pageLink(r, page+1)
	}
	if prev := page - 1; prev >= 1 && (prev-1)*pageSize < count {
		p.Previous = pageLink(r, prev)
	}
	return p
}

// pageLink строит абсолютную ссылку на страницу текущего списка.
// Ссылка на первую страницу отдаётся без параметра page.
func pageLink(r *http.Request, page int) *string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	} else {
		q.Del("page")
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	s := u.String()
	return &s
}
