package main

import (
	"context"
	"os"
)

func main() {
	// Los errores de las operaciones ya quedan en el log; solo un fallo al arrancar el comando sale con 1.
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
