package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App    *App
		HTTP   *HTTP
		Gemini *Gemini
		Owner  *Owner
	}

	App struct {
		Name string
		Env  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Gemini struct {
		APIKey           string
		DescriptionModel string
		ReportModel      string
	}

	// Owner is the seed profile of the single registry owner. Inserted
	// only into rendered documents, never into generation prompts.
	Owner struct {
		Name        string
		DateOfBirth string
		Address     string
		Email       string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	gemini := &Gemini{
		APIKey:           os.Getenv("GEMINI_API_KEY"),
		DescriptionModel: getEnv("GEMINI_DESCRIPTION_MODEL", "gemini-2.5-flash"),
		ReportModel:      getEnv("GEMINI_REPORT_MODEL", "gemini-2.5-flash"),
	}

	owner := &Owner{
		Name:        os.Getenv("OWNER_NAME"),
		DateOfBirth: os.Getenv("OWNER_DATE_OF_BIRTH"),
		Address:     os.Getenv("OWNER_ADDRESS"),
		Email:       os.Getenv("OWNER_EMAIL"),
	}

	return &Container{
		App:    app,
		HTTP:   http,
		Gemini: gemini,
		Owner:  owner,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
