package phantoms4d

var (
	Debug = false // set to true for verbose job reports
)
