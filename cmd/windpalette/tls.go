package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "Inspect ACME certificates",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show expiry of the certificates for the base domain",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fatal("%v", err)
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is off; certificates are only managed with server.tls_enabled=true")
			return
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			fatal("loading TLS config: %v", err)
		}

		statuses, err := tls.CertificateStatusIn(tlsCfg.CertDir, tlsCfg.Domains())
		if err != nil {
			fatal("reading certificate status: %v", err)
		}

		env := "production"
		if tlsCfg.Staging {
			env = "staging"
		}
		fmt.Printf("ACME: %s, contact %s, storage %s\n\n", env, tlsCfg.Email, tlsCfg.CertDir)

		found := make(map[string]bool, len(statuses))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tISSUER\tEXPIRES\tDAYS LEFT")
		for _, st := range statuses {
			found[st.Domain] = true
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", st.Domain, st.Issuer, st.NotAfter.Format("2006-01-02"), st.DaysUntilExpiry)
		}
		for _, domain := range tlsCfg.Domains() {
			if !found[domain] {
				fmt.Fprintf(w, "%s\t-\t-\tnot yet provisioned\n", domain)
			}
		}
		w.Flush()
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
