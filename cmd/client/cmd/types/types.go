package types

type contextKey string

// ClientAppKey - ключ контекста, под которым лежит *client.App.
const ClientAppKey contextKey = "clientApp"
