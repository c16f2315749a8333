package testutil

// WPStarterTemplate is a trimmed WP Starter wp-config.php with every section
// the wp-config step touches
const WPStarterTemplate = `<?php
use WeCodeMore\WpStarter\Env\WordPressEnvBridge;

AUTOLOAD: {
    require_once __DIR__ . '/../vendor/autoload.php';
} #@@/AUTOLOAD

ENV_VARIABLES: {
    $envLoader = WordPressEnvBridge::load();
} #@@/ENV_VARIABLES

BEFORE_BOOTSTRAP: {
    $table_prefix = 'wp_';
} #@@/BEFORE_BOOTSTRAP

THEMES_REGISTER: {
    register_theme_directory(ABSPATH . 'wp-content/themes');
} #@@/THEMES_REGISTER

ADMIN_COLOR: {
    add_filter('get_user_option_admin_color', fn () => 'coffee');
} #@@/ADMIN_COLOR

require_once ABSPATH . 'wp-settings.php';
`
