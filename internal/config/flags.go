package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendWatson = "watson"
	BackendOpenAI = "openai"
)

var (
	Dev       bool
	LogPath   string
	Addr      string
	ServerURL string
	Headless  bool
	Backend   string
)

var (
	WatsonURL     string
	WatsonModelID string
	OpenAIKey     string
	OpenAIModel   string
)

const (
	defaultWatsonURL     = "https://sn-watson-sentiment-bert.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/SentimentPredict"
	defaultWatsonModelID = "sentiment_aggregated-bert-workflow_lang_multi_stock"
	defaultOpenAIModel   = "gpt-3.5-turbo"
)

func Init() {
	flag.BoolVar(&Dev, "dev", false, "Development mode")
	flag.StringVar(&LogPath, "logPath", "", "Path to save the log file")
	flag.StringVar(&Addr, "addr", ":5000", "Address the sentiment server listens on")
	flag.StringVar(&ServerURL, "server", "http://localhost:5000", "Base URL the UI sends analysis requests to")
	flag.BoolVar(&Headless, "headless", false, "Run the server without the terminal UI")
	flag.StringVar(&Backend, "backend", BackendWatson, "Sentiment backend: watson or openai")
	flag.Parse()

	LoadEnv()
}

// LoadEnv reads .env when present; variables already set in the environment win.
func LoadEnv() {
	godotenv.Load()

	WatsonURL = getenv("WATSON_URL", defaultWatsonURL)
	WatsonModelID = getenv("WATSON_MODEL_ID", defaultWatsonModelID)
	OpenAIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIModel = getenv("OPENAI_MODEL", defaultOpenAIModel)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
