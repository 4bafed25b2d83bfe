package status

// DataSource сообщает, настроен ли источник данных
type DataSource interface {
	Configured() bool
}
