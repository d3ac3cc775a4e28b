package pipeline

type Request struct {
	Text string `json:"redis_key"`
	Tid  string `json:"tid"`
}

// Pipeline takes a transcript request and delivers the serialized response
// on the returned channel.
type Pipeline func(request Request) <-chan string
