package consts

const (
	ApplicationName    = "Concessionaria Server"
	ApplicationVersion = "1.0.0"
)
