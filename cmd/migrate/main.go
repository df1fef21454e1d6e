package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"eventapi/db"
)

// Operator CLI over the same embedded migrations the server applies at
// startup. Useful for rollbacks and recovering a dirty schema version.
func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		log.Fatal("PG_DSN environment variable is required")
	}

	sqldb, err := db.Open(dsn)
	if err != nil {
		log.Fatal("Postgres error: ", err)
	}
	defer sqldb.Close()

	switch args[0] {
	case "up":
		if err := db.Migrate(sqldb); err != nil {
			log.Fatal("up failed: ", err)
		}
		log.Println("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatalf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := db.MigrateDown(sqldb, steps); err != nil {
			log.Fatal("down failed: ", err)
		}
		log.Printf("migrations: down completed (steps=%d)", steps)

	case "version":
		v, dirty, err := db.MigrateVersion(sqldb)
		if err != nil {
			log.Fatal("version failed: ", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("force: invalid version %q", args[1])
		}
		if err := db.MigrateForce(sqldb, v); err != nil {
			log.Fatal("force failed: ", err)
		}
		log.Printf("migrations: forced to version %d", v)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Rollback N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (bypass dirty state)

Environment:
  PG_DSN       Required. Postgres DSN.`)
}
