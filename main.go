package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/gautham-here/hackathon-centre/config"
	"github.com/gautham-here/hackathon-centre/database"
	"github.com/gautham-here/hackathon-centre/routes"
	"github.com/gautham-here/hackathon-centre/sessions"
)

func main() {
	initDB := flag.Bool("init-db", false, "create the database schema and exit")
	resetDB := flag.Bool("reset-db", false, "drop all data, recreate the schema and exit")
	flag.Parse()

	config.Load()
	database.Connect(config.C.DatabasePath)

	if *resetDB {
		log.Print("This will DROP all data. Type YES to continue: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "YES" {
			log.Println("Aborted.")
			return
		}
		database.ResetTables()
		log.Println("Database reset done.")
		return
	}

	database.MigrateTables()
	if *initDB {
		log.Printf("Database initialized at %s", config.C.DatabasePath)
		return
	}

	var store sessions.Store
	if config.C.SessionRedisAddr != "" {
		database.InitRedis(config.C.SessionRedisAddr)
		store = sessions.NewRedisStore(database.RDB, config.C.SessionTTL)
	} else {
		store = sessions.NewMemoryStore(config.C.SessionTTL)
	}
	manager := sessions.NewManager(store, config.C.SecretKey, config.C.SessionTTL)

	r := routes.SetupRouter(manager)

	log.Printf("Starting server on %s", config.C.Addr)
	if err := r.Run(config.C.Addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
