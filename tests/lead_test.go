package tests

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

func (s *APITestSuite) TestLeads() {
	ctx := context.Background()
	contentType := "application/json"
	phone := "+79990001122"

	leadBody := bytes.NewBufferString(fmt.Sprintf(`{"name":"Анна","phone":"%s"}`, phone))
	response, err := http.Post(fmt.Sprintf("%s/leads", s.baseUrl), contentType, leadBody)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	// проверка что лид появился в бд
	var leadCount int
	s.dbClient.QueryRow(ctx, "SELECT COUNT(*) FROM leads WHERE phone=$1", phone).
		Scan(&leadCount)
	s.Equal(1, leadCount)
}

func (s *APITestSuite) TestSubscribe() {
	contentType := "application/json"
	email := "test@mail.ru"

	subscribeURL := fmt.Sprintf("%s/subscribe", s.baseUrl)

	emailBody := bytes.NewBufferString(fmt.Sprintf(`{"email":"%s"}`, email))
	response, err := http.Post(subscribeURL, contentType, emailBody)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	// повторная подписка не считается ошибкой
	emailBody = bytes.NewBufferString(fmt.Sprintf(`{"email":"%s"}`, email))
	response, err = http.Post(subscribeURL, contentType, emailBody)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)
}
