package domain

// BasemapResource - ответ провайдера подложки, проксируемый клиенту как есть
type BasemapResource struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
