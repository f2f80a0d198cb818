package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaushikKC/VeilPay/src/commitment"
	"github.com/KaushikKC/VeilPay/src/config"
	"github.com/KaushikKC/VeilPay/src/database"
	"github.com/KaushikKC/VeilPay/src/ledger"
	"github.com/KaushikKC/VeilPay/src/logger"
	"github.com/KaushikKC/VeilPay/src/proofstore"
	"github.com/KaushikKC/VeilPay/src/queues"
	"github.com/KaushikKC/VeilPay/src/settlement"
	"github.com/KaushikKC/VeilPay/src/utilities"
	"github.com/KaushikKC/VeilPay/src/verification"
	"github.com/KaushikKC/VeilPay/src/zkp"
)

func main() {
	cfg := config.Load()
	bootLogger := logger.Default()

	// 1. Database and migrations
	db, err := database.ConnectToDatabase(cfg.DatabaseKind, cfg.DatabaseURL)
	utilities.FailOnError(err, "Failed to connect to database")
	err = database.Migrate(db,
		&commitment.EmployeeSecret{},
		&ledger.LedgerEntry{},
		&ledger.Registration{},
		&ledger.AuthorizedWriter{},
		&settlement.Balance{},
		&settlement.StablecoinConfig{},
		&verification.VerificationRecord{},
	)
	utilities.FailOnError(err, "Failed to run migrations")

	// 2. Proving engine; circuit setup takes seconds, warm it off the
	// boot path. Proof endpoints report ProverUnavailable until done.
	engine := zkp.NewGroth16Engine()
	go func() {
		if warmErr := engine.WarmUp(); warmErr != nil {
			bootLogger.Errorf(warmErr, "Circuit setup failed")
			return
		}
		bootLogger.Info("Proving engine provisioned")
	}()

	// 3. RabbitMQ: exchange, queues, publisher, proof job consumer
	var publisher queues.EventPublisher = queues.NoopPublisher{}
	var proofConsumer *queues.RabbitConsumer
	if cfg.QueuesOn {
		conn, err := queues.ConnectToRabbitmq(cfg.AmqpURL)
		utilities.FailOnError(err, "Failed to connect to RabbitMQ after retries")
		defer conn.Close()

		ch, err := conn.Channel()
		utilities.FailOnError(err, "Failed to open a channel")
		defer ch.Close()

		err = queues.SetupPayrollQueues(ch)
		utilities.FailOnError(err, "Failed to setup exchange/queues")
		publisher = queues.NewRabbitPublisher(ch, queues.PayrollExchange)

		proofConsumer, err = queues.NewRabbitConsumer(conn, queues.QueueProofRequested)
		utilities.FailOnError(err, "Failed to open the proof job consumer")
	} else {
		bootLogger.Warn("Queues disabled, events will be dropped")
	}

	// 4. Domain services
	secretRepo := commitment.NewRepository(db)
	commitmentService := commitment.NewService(secretRepo)
	proofService := zkp.NewService(engine)
	registry := proofstore.NewInMemoryStore()
	ledgerService := ledger.NewService(ledger.NewRepository(db), cfg.OwnerAddress, publisher)
	executor := settlement.NewExecutor(db, settlement.NewRepository(db), ledgerService, cfg.OwnerAddress, cfg.ExecutorAddress)
	gate := verification.NewGate(engine, verification.NewRepository(db), publisher)

	// 5. The executor appends ledger entries under its own address
	err = ledgerService.SetAuthorizedWriter(cfg.OwnerAddress, cfg.ExecutorAddress, true)
	utilities.FailOnError(err, "Failed to authorize the settlement executor")

	// 6. Background services
	sweeper := proofstore.NewSweeper(registry, cfg.ProofTTL)
	sweeper.StartService()
	defer sweeper.Stop()

	if proofConsumer != nil {
		worker := queues.NewProofWorker(secretRepo, proofService, registry, publisher, proofConsumer)
		err = worker.StartService()
		utilities.FailOnError(err, "Failed to start the proof worker")
	}

	// 7. HTTP surface
	router := gin.Default()
	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	commitment.RegisterCommitmentRoutes(api.Group("/commitments"), commitment.NewHandler(commitmentService))
	zkp.RegisterProofRoutes(api.Group("/proofs"), zkp.NewHandler(proofService, engine, engine))
	proofstore.RegisterProofStoreRoutes(api.Group("/proofs"), proofstore.NewHandler(registry))
	ledger.RegisterLedgerRoutes(api.Group("/ledger"), ledger.NewHandler(ledgerService))
	settlement.RegisterSettlementRoutes(api.Group("/payroll"), settlement.NewHandler(executor))
	verification.RegisterVerificationRoutes(api, verification.NewHandler(gate))

	bootLogger.Infof("server running at %s", cfg.ListenAddr)
	err = router.Run(cfg.ListenAddr)
	utilities.FailOnError(err, "Server stopped")
}
