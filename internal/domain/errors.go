package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrDatabase envuelve cualquier fallo del motor (constraint, conectividad, datos mal formados).
	// El mensaje original del driver viaja adjunto: fmt.Errorf("%w: ...", ErrDatabase, ...).
	ErrDatabase = errors.New("database error")

	// ErrStoreNotInitialized se devuelve si un repositorio se usa sin handle de conexión.
	ErrStoreNotInitialized = errors.New("store no inicializado")
)
