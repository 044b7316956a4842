package tests

import (
	"fmt"
	"net/http"
	"net/url"
)

type brandItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	LogoURL string `json:"logo_url"`
}

type itemsResponse struct {
	Items []brandItem `json:"items"`
}

func (s *APITestSuite) TestBrandSearch() {
	// кириллический алиас из сида
	searchURL := fmt.Sprintf("%s/brands/search?q=%s", s.baseUrl, url.QueryEscape("зара"))
	response, err := http.Get(searchURL)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[itemsResponse](response)
	s.NoError(err)

	s.Require().NotEmpty(body.Items)
	s.Equal("zara", body.Items[0].ID)

	// слишком короткий запрос
	response, err = http.Get(fmt.Sprintf("%s/brands/search?q=a", s.baseUrl))
	s.NoError(err)

	s.Equal(http.StatusBadRequest, response.StatusCode)
}

func (s *APITestSuite) TestBrandPopular() {
	response, err := http.Get(fmt.Sprintf("%s/brands/popular?tier=luxury", s.baseUrl))
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[itemsResponse](response)
	s.NoError(err)

	s.Require().NotEmpty(body.Items)

	for _, item := range body.Items {
		s.Equal("luxury", item.Tier)
	}
}
