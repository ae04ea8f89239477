// hashgen genera hashes bcrypt para sembrar usuarios a mano.
//
// Uso:
//
//	go run ./cmd/hashgen -password "secreta" [-cost 10]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Taller-api/pkg/password"
)

func main() {
	pass := flag.String("password", "", "contraseña en texto plano a hashear")
	cost := flag.Int("cost", 0, "costo bcrypt (0 = por defecto)")
	flag.Parse()

	if *pass == "" {
		fmt.Fprintln(os.Stderr, "uso: hashgen -password <contraseña> [-cost n]")
		os.Exit(2)
	}

	hash, err := password.NewBcrypt(*cost).Hash(*pass)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar hash:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
