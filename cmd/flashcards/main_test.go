package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var _ = Describe("flashcards CLI", func() {
	var (
		dir        string
		configPath string
		outputDir  string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		outputDir = filepath.Join(dir, "out")
		imageDir := filepath.Join(dir, "images")
		Expect(os.MkdirAll(imageDir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(imageDir, "bw0009.jpg"), []byte("not really a jpeg"), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(imageDir, "readme.txt"), []byte("notes"), 0o644)).To(Succeed())

		wordlistPath := filepath.Join(dir, "wordlist.tsv")
		Expect(os.WriteFile(wordlistPath, []byte(
			"ID\tPoS\tEnglish\tKhmer\n"+
				"1\tnoun\twater\tទឹក\n"+
				"2\tverb\tto eat\tញ៉ាំ\n"+
				"3\tnoun\tfire\tភ្លើង\n",
		), 0o644)).To(Succeed())

		configPath = filepath.Join(dir, "config.yaml")
		Expect(os.WriteFile(configPath, []byte(fmt.Sprintf(`targetLanguageName: Khmer
wordlistPath: %q
images:
  directory: %q
  defaultSize: [200, 200]
startId: 1
endId: 10
cardsPerAccordion: 2
outputDir: %q
`, wordlistPath, imageDir, outputDir)), 0o644)).To(Succeed())
	})

	It("prints the version", func() {
		stdout, _, err := execute("version")
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(HavePrefix("flashcards "))
	})

	It("requires a config file", func() {
		_, _, err := execute("-q")
		Expect(err).To(MatchError(ContainSubstring("config file is required")))
	})

	It("generates every variant and prints the report", func() {
		stdout, stderr, err := execute("-c", configPath, "-q")
		Expect(err).NotTo(HaveOccurred())

		Expect(filepath.Join(outputDir, "card-sets-khmer-image.html")).To(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "card-sets-khmer-no-image.html")).To(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "card-sets-khmer-blank.html")).To(BeAnExistingFile())
		Expect(stdout).To(ContainSubstring("Records in range"))
		Expect(stderr).To(ContainSubstring("INFO: Wrote"))
	})

	It("lets -t override the wordlist path", func() {
		_, _, err := execute("-c", configPath, "-t", filepath.Join(dir, "missing.tsv"), "-q")
		Expect(err).To(MatchError(ContainSubstring("can't open wordlist")))
		Expect(outputDir).NotTo(BeADirectory())
	})

	It("reports every configuration problem", func() {
		Expect(os.WriteFile(configPath, []byte("startId: 5\nendId: 2\n"), 0o644)).To(Succeed())
		_, _, err := execute("-c", configPath)
		Expect(err).To(MatchError(ContainSubstring("targetLanguageName is required")))
		Expect(err).To(MatchError(ContainSubstring("startId 5 is greater than endId 2")))
	})

	It("audits the image folder", func() {
		stdout, _, err := execute("images", "-c", configPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(ContainSubstring("records without image"))
		Expect(stdout).To(ContainSubstring("#0001 #0002 #0003"))
		Expect(stdout).To(ContainSubstring("bw0009.jpg"))
		Expect(stdout).To(ContainSubstring("readme.txt"))
	})

	It("validates a configuration", func() {
		stdout, _, err := execute("config", "validate", "-c", configPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(ContainSubstring("is valid"))
		Expect(stdout).To(ContainSubstring("2 cards per group"))
	})

	It("writes a sample configuration once", func() {
		target := filepath.Join(dir, "new", "flashcards.yaml")
		stdout, _, err := execute("config", "init", "-o", target)
		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(ContainSubstring("Wrote sample configuration"))
		Expect(target).To(BeAnExistingFile())

		_, _, err = execute("config", "init", "-o", target)
		Expect(err).To(MatchError(ContainSubstring("already exists")))

		_, _, err = execute("config", "init", "-o", target, "--overwrite")
		Expect(err).NotTo(HaveOccurred())
	})

	It("truncates long listings", func() {
		Expect(truncate([]string{"a", "b", "c"}, 2)).To(Equal("a b ... (+1)"))
		Expect(truncate([]string{"a", "b"}, 0)).To(Equal("a b"))
	})
})
