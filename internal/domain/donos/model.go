package donos

// Dono representa al dueño de una o más mascotas.
// Todos los campos salvo el ID son opcionales: el sistema original
// acepta registros parciales y la capa de storage los admite como NULL.
type Dono struct {
	ID       int64
	Nome     string
	CPF      string
	Telefone string
}
