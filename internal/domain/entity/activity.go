package entity

import "time"

// Activity es una entrada append-only del feed de actividad reciente.
// Se crea como efecto secundario al registrar proyectos, inventario y gastos;
// no existe camino de actualización ni borrado.
type Activity struct {
	ID          string
	Description string
	Bold        string // nombre del sujeto, resaltado en el feed
	CreatedAt   time.Time
}
