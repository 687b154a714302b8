package empty

type Thing struct{}
