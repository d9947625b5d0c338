package pets

// Pet representa una mascota registrada en el sistema.
// Nome/Tipo/Raca son opcionales; DonoID es obligatorio y referencia
// a un dono existente (la FK del storage es la autoridad).
type Pet struct {
	ID     int64
	Nome   string
	Tipo   string // especie: "Cão", "Gato", etc.
	Raca   string
	DonoID int64
}
