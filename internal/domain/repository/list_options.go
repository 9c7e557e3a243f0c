package repository

// ListOptions parámetros ya validados para un listado paginado.
// SortColumn debe salir de la allow-list del caso de uso correspondiente,
// nunca directo del request: los adaptadores lo interpolan en el ORDER BY.
type ListOptions struct {
	Limit      int
	Offset     int
	SortColumn string
	Desc       bool
}
