package model

// CalcRequestBody is the POST /calc payload: raw chart content plus
// calculation options. Rate 0 means all rates.
type CalcRequestBody struct {
	Content   string  `json:"content"`
	Rate      float32 `json:"rate"`
	ScoreGoal float32 `json:"score_goal"`
	Capped    bool    `json:"capped"`
}

type CalcResponse struct {
	Title  string  `json:"title"`
	Rate   float32 `json:"rate"`
	Capped bool    `json:"capped"`
	Scores Scores  `json:"scores"`
}

type CalcAllRatesResponse struct {
	Title  string            `json:"title"`
	Capped bool              `json:"capped"`
	Scores map[string]Scores `json:"scores"`
}

// ChartScores is one entry of the precomputed score index.
type ChartScores struct {
	Title    string
	KeyCount int
	AllRates AllRates
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
