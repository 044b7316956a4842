package tests

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

type startResponse struct {
	QuizID string `json:"quiz_id"`
}

type brandSelection struct {
	FavoriteBrandIDs []string `json:"favorite_brand_ids"`
	CustomBrandNames []string `json:"custom_brand_names"`
	AutoPick         bool     `json:"auto_pick_brands"`
}

type brandSelectionResponse struct {
	Saved brandSelection `json:"saved"`
}

func (s *APITestSuite) TestQuizBrandSelection() {
	ctx := context.Background()
	contentType := "application/json"

	// старт сессии
	response, err := http.Post(fmt.Sprintf("%s/quiz/start", s.baseUrl), contentType, nil)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	started, err := decodeResponseBody[startResponse](response)
	s.NoError(err)
	s.NotEmpty(started.QuizID)

	// проверка что сессия появилась в бд
	var sessionCount int
	s.dbClient.QueryRow(ctx, "SELECT COUNT(*) FROM quiz_sessions WHERE id=$1", started.QuizID).
		Scan(&sessionCount)
	s.Equal(1, sessionCount)

	// сохранение выбора брендов
	selectionBody := bytes.NewBufferString(fmt.Sprintf(
		`{"quiz_id":"%s","favorite_brand_ids":["zara","cos"],"custom_brand_names":["No Name Atelier"]}`,
		started.QuizID,
	))
	response, err = http.Post(fmt.Sprintf("%s/quiz/brands", s.baseUrl), contentType, selectionBody)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	saved, err := decodeResponseBody[brandSelectionResponse](response)
	s.NoError(err)
	s.Equal([]string{"zara", "cos"}, saved.Saved.FavoriteBrandIDs)
	s.Equal([]string{"No Name Atelier"}, saved.Saved.CustomBrandNames)
	s.False(saved.Saved.AutoPick)

	// чтение выбора
	response, err = http.Get(fmt.Sprintf("%s/quiz/%s/brands", s.baseUrl, started.QuizID))
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	fetched, err := decodeResponseBody[brandSelection](response)
	s.NoError(err)
	s.Equal([]string{"zara", "cos"}, fetched.FavoriteBrandIDs)

	// превышение квоты
	quotaBody := bytes.NewBufferString(fmt.Sprintf(
		`{"quiz_id":"%s","favorite_brand_ids":["zara","cos","gucci","prada"]}`,
		started.QuizID,
	))
	response, err = http.Post(fmt.Sprintf("%s/quiz/brands", s.baseUrl), contentType, quotaBody)
	s.NoError(err)

	s.Equal(http.StatusBadRequest, response.StatusCode)

	// неизвестный бренд
	unknownBody := bytes.NewBufferString(fmt.Sprintf(
		`{"quiz_id":"%s","favorite_brand_ids":["unknown-brand"]}`,
		started.QuizID,
	))
	response, err = http.Post(fmt.Sprintf("%s/quiz/brands", s.baseUrl), contentType, unknownBody)
	s.NoError(err)

	s.Equal(http.StatusBadRequest, response.StatusCode)

	// авто-подбор перекрывает ручной выбор
	autoPickBody := bytes.NewBufferString(fmt.Sprintf(
		`{"quiz_id":"%s","favorite_brand_ids":["zara"],"auto_pick_brands":true}`,
		started.QuizID,
	))
	response, err = http.Post(fmt.Sprintf("%s/quiz/brands", s.baseUrl), contentType, autoPickBody)
	s.NoError(err)

	s.Equal(http.StatusOK, response.StatusCode)

	saved, err = decodeResponseBody[brandSelectionResponse](response)
	s.NoError(err)
	s.True(saved.Saved.AutoPick)
	s.Empty(saved.Saved.FavoriteBrandIDs)
}
