package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordlist-tools/flashcards/pkg/logger"
)

var _ = Describe("Logger", func() {
	var (
		buf *bytes.Buffer
		log *logger.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.New(
			logger.WithOutput(buf),
			logger.WithPrefix("[test] "),
			logger.WithFlags(0),
		)
	})

	It("should always print info lines", func() {
		log.Info("wrote %d cards", 3)
		Expect(buf.String()).To(Equal("[test] INFO: wrote 3 cards\n"))
	})

	It("should hide debug lines unless verbose", func() {
		log.Debug("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetVerbose(true)
		log.Debug("shown")
		Expect(buf.String()).To(ContainSubstring("DEBUG: shown"))
	})

	It("should only print trace lines at trace level", func() {
		log.SetVerbose(true)
		log.Trace("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetLevel(logger.LevelTrace)
		log.Trace("shown")
		Expect(buf.String()).To(ContainSubstring("TRACE: shown"))
	})

	It("should count warnings", func() {
		log.Warn("line %d: missing English gloss", 4)
		log.Warn("duplicate identifier %d", 7)
		Expect(log.Warnings()).To(Equal(2))
		Expect(buf.String()).To(ContainSubstring("WARN: line 4: missing English gloss"))
	})
})
