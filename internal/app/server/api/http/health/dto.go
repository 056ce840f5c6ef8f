package health

type Input struct{}

type Output struct {
	Body Response
}

type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	Service string `json:"service" example:"notekeeper" doc:"Service name"`
}
