// moodctl puntúa entradas guardadas (texto, características de audio y frames faciales)
// sin levantar el servidor ni el servicio de extracción.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
